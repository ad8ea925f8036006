package consts

const (
	TopicTipCreated = "tips.created"

	// NotificationTitle is the fixed title of every push notification
	NotificationTitle = "Tips latest tip"
)

var ConsumerTopics = []string{
	TopicTipCreated,
}
