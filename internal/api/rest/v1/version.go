package v1

// BasePath is the path prefix of every v1 endpoint
const BasePath = "/api/v1"
