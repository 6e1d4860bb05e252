package types

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"
