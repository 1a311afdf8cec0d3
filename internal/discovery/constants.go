package discovery

// Health check tuning sent to the agent
const (
	CheckPath            = "/healthz"
	CheckInterval        = "10s"
	CheckTimeout         = "5s"
	DeregisterCriticalAt = "1m"
)

// Log messages
const (
	LogMsgRegistered       = "Registered with Consul"
	LogMsgDeregistered     = "Deregistered from Consul"
	LogMsgRegisterFailed   = "Consul registration failed, continuing without discovery"
	LogMsgDeregisterFailed = "Consul deregistration failed"
)
