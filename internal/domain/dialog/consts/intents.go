package consts

// Intent names of the conversational turn protocol. Turns arrive with the
// intent already resolved and parameters extracted.
const (
	IntentWelcome           = "welcome"
	IntentTellTip           = "tell_tip"
	IntentTellLatestTip     = "tell_latest_tip"
	IntentSetupPush         = "setup_push"
	IntentFinishPushSetup   = "finish_push_setup"
	IntentSetupUpdate       = "setup_update"
	IntentFinishUpdateSetup = "finish_update_setup"
)

const (
	ParamCategory = "category"

	// UpdateFrequencyDaily is the fixed frequency of daily-update registrations
	UpdateFrequencyDaily = "DAILY"

	// RegisterStatusOK is the success status of a registration result
	RegisterStatusOK = "OK"
)
