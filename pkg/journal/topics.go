package journal

const TopicEvents = "catsdogs.events"
