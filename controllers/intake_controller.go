package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DerekRojGar/awa-AquaReminder/config"
	"github.com/DerekRojGar/awa-AquaReminder/services"
	"github.com/DerekRojGar/awa-AquaReminder/utils"

	"github.com/gin-gonic/gin"
)

type IntakeController struct {
	Intake  *services.IntakeService
	Profile *services.ProfileService
}

func NewIntakeController(intake *services.IntakeService, profile *services.ProfileService) *IntakeController {
	return &IntakeController{Intake: intake, Profile: profile}
}

// goalML returns the active daily goal: the profile goal when one is saved,
// the app default otherwise.
func (ic *IntakeController) goalML() (int, string) {
	if p := ic.Profile.Load(); p != nil && p.DailyGoalML > 0 {
		return p.DailyGoalML, "profile"
	}
	return config.DefaultDailyGoalML, "default"
}

func respondServiceError(c *gin.Context, err error) {
	var verr *utils.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

type RecordInput struct {
	AmountML int    `json:"amount_ml" binding:"required"`
	TS       string `json:"ts"`
}

func (ic *IntakeController) Record(c *gin.Context) {
	var input RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.AmountML <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.Invalid("amount_ml", "must be a positive number of millilitres").Error()})
		return
	}

	event, err := ic.Intake.Record(input.AmountML, input.TS)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	total, err := ic.Intake.TodayTotal()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	goal, _ := ic.goalML()
	kind := services.EventIntakeRecorded
	if total >= goal && total-input.AmountML < goal {
		kind = services.EventGoalReached
	}
	services.EmitProgress(kind, total, goal)

	c.JSON(http.StatusCreated, gin.H{
		"event":    event,
		"total_ml": total,
		"goal_ml":  goal,
		"percent":  services.ProgressPercent(total, goal),
		"warnings": utils.AssessIntake(input.AmountML, total),
	})
}

func (ic *IntakeController) TodayTotal(c *gin.Context) {
	total, err := ic.Intake.TodayTotal()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":     time.Now().Format(services.DateLayout),
		"total_ml": total,
	})
}

func (ic *IntakeController) Progress(c *gin.Context) {
	total, err := ic.Intake.TodayTotal()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	goal, source := ic.goalML()
	c.JSON(http.StatusOK, gin.H{
		"date":        time.Now().Format(services.DateLayout),
		"total_ml":    total,
		"goal_ml":     goal,
		"goal_source": source,
		"percent":     services.ProgressPercent(total, goal),
	})
}

func (ic *IntakeController) Recent(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	events, err := ic.Intake.Recent(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (ic *IntakeController) Range(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'start' or 'end' query param"})
		return
	}

	events, err := ic.Intake.Between(start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"start": start, "end": end, "events": events})
}

func (ic *IntakeController) DailyTotals(c *gin.Context) {
	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = n
	}
	includeMissing := c.Query("include_missing") == "true"

	totals, err := ic.Intake.DailyTotals(days, includeMissing)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "totals": totals})
}

func (ic *IntakeController) UndoLast(c *gin.Context) {
	event, err := ic.Intake.UndoLast()
	if err != nil {
		if errors.Is(err, services.ErrLedgerEmpty) {
			// Nothing to undo is not a failure.
			c.JSON(http.StatusOK, gin.H{"undone": nil})
			return
		}
		respondServiceError(c, err)
		return
	}

	total, err := ic.Intake.TodayTotal()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	goal, _ := ic.goalML()
	services.EmitProgress(services.EventIntakeUndone, total, goal)

	c.JSON(http.StatusOK, gin.H{"undone": event, "total_ml": total})
}

func (ic *IntakeController) Reset(c *gin.Context) {
	if err := ic.Intake.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	goal, _ := ic.goalML()
	services.EmitProgress(services.EventAppReset, 0, goal)
	c.Status(http.StatusNoContent)
}
