package directory

// Well-known service names in the registry.
const (
	ServiceGateway  = "gateway"  // client-facing WebSocket address
	ServicePush     = "push"     // gateway push-endpoint gRPC address
	ServiceAuth     = "auth"
	ServiceChat     = "chat"
	ServiceRelation = "relation"
)
