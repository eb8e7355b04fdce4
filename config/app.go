package config

// Application defaults mirrored from the original awa client configuration.

// DefaultDailyGoalML is used whenever no profile goal exists and whenever the
// goal suggestion cannot be computed.
const DefaultDailyGoalML = 2000

// QuickAmountsML are the one-tap amounts the UI offers.
var QuickAmountsML = []int{250, 350, 500, 750}

// AvatarCount is the size of the bundled avatar set (assets/avatars holds
// Avatar1.jpg through Avatar4.jpg); avatar_id must fall in [0, AvatarCount).
const AvatarCount = 4
