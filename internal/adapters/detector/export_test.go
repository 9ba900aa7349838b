package detector

// Resolve exports resolve for testing.
var Resolve = resolve
