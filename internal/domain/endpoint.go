package domain

// EndpointID identifies one connected channel endpoint. It is stable
// for the lifetime of the connection and doubles as the participant id.
type EndpointID string
