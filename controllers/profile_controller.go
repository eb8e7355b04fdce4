package controllers

import (
	"net/http"
	"time"

	"github.com/DerekRojGar/awa-AquaReminder/config"
	"github.com/DerekRojGar/awa-AquaReminder/models"
	"github.com/DerekRojGar/awa-AquaReminder/services"
	"github.com/DerekRojGar/awa-AquaReminder/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Profile *services.ProfileService
	Intake  *services.IntakeService
}

func NewProfileController(profile *services.ProfileService, intake *services.IntakeService) *ProfileController {
	return &ProfileController{Profile: profile, Intake: intake}
}

type ProfileInput struct {
	Name        string  `json:"name"`
	Age         *int    `json:"age"`
	WeightKg    float64 `json:"weight_kg"`
	HeightCm    float64 `json:"height_cm"`
	Sex         string  `json:"sex"`
	Activity    string  `json:"activity"`
	DailyGoalML *int    `json:"daily_goal_ml"`
	AvatarID    int     `json:"avatar_id"`
}

func validateProfileInput(input *ProfileInput) *utils.ValidationError {
	if input.WeightKg <= 0 {
		return utils.Invalid("weight_kg", "must be greater than 0")
	}
	if input.HeightCm <= 0 {
		return utils.Invalid("height_cm", "must be greater than 0")
	}
	if input.Age != nil && *input.Age <= 0 {
		return utils.Invalid("age", "must be greater than 0")
	}
	if input.Sex != "" && !models.ValidSex(input.Sex) {
		return utils.Invalid("sex", "must be Male, Female or Other")
	}
	if input.Activity != "" && !models.ValidActivity(input.Activity) {
		return utils.Invalid("activity", "must be Low, Moderate or High")
	}
	if input.DailyGoalML != nil && *input.DailyGoalML <= 0 {
		return utils.Invalid("daily_goal_ml", "must be greater than 0")
	}
	if input.AvatarID < 0 || input.AvatarID >= config.AvatarCount {
		return utils.Invalid("avatar_id", "not in the bundled avatar set")
	}
	return nil
}

func (pc *ProfileController) Get(c *gin.Context) {
	profile := pc.Profile.Load()
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile saved"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Save replaces the whole profile document. A missing goal is filled with the
// suggested one, matching the original form's "leave blank for suggested"
// behavior.
func (pc *ProfileController) Save(c *gin.Context) {
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if verr := validateProfileInput(&input); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}

	sex := input.Sex
	if sex == "" {
		sex = models.SexOther
	}
	activity := input.Activity
	if activity == "" {
		activity = models.ActivityLow
	}

	goal := 0
	if input.DailyGoalML != nil {
		goal = *input.DailyGoalML
	}
	if goal <= 0 {
		goal = utils.SuggestedGoalML(input.WeightKg, activity)
	}

	profile := &models.Profile{
		Name:        input.Name,
		Age:         input.Age,
		WeightKg:    input.WeightKg,
		HeightCm:    input.HeightCm,
		Sex:         sex,
		Activity:    activity,
		DailyGoalML: goal,
		AvatarID:    input.AvatarID,
		CreatedAt:   time.Now().Format(services.TimestampLayout),
	}

	if err := pc.Profile.Save(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) Delete(c *gin.Context) {
	if err := pc.Profile.Delete(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (pc *ProfileController) Complete(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"complete": pc.Profile.IsComplete()})
}

type PreviewInput struct {
	WeightKg    float64 `json:"weight_kg"`
	HeightCm    float64 `json:"height_cm"`
	Activity    string  `json:"activity"`
	DailyGoalML *int    `json:"daily_goal_ml"`
}

// Preview computes the BMI and goal shown live on the profile form, from draft
// values that have not been saved. Nothing here persists.
func (pc *ProfileController) Preview(c *gin.Context) {
	var input PreviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggested := utils.SuggestedGoalML(input.WeightKg, input.Activity)
	goal := suggested
	if input.DailyGoalML != nil && *input.DailyGoalML > 0 {
		goal = *input.DailyGoalML
	}

	resp := gin.H{
		"suggested_goal_ml": suggested,
		"goal_ml":           goal,
	}
	if bmi, err := utils.CalculateBMI(input.HeightCm, input.WeightKg); err == nil {
		resp["bmi"] = bmi
		resp["bmi_category"] = utils.BMICategory(bmi)
	} else {
		// Blank preview until the form has plausible numbers.
		resp["bmi"] = nil
	}
	c.JSON(http.StatusOK, resp)
}

// ResetAll wipes profile and ledger in one action, then tells connected UIs to
// restart onboarding.
func (pc *ProfileController) ResetAll(c *gin.Context) {
	if err := pc.Profile.ResetAll(pc.Intake); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.EmitProgress(services.EventAppReset, 0, config.DefaultDailyGoalML)
	c.JSON(http.StatusOK, gin.H{"message": "all data deleted"})
}
