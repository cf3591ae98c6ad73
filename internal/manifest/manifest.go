package manifest

// Version is the application version reported by "gwctl version".
const Version = "0.3.0"
