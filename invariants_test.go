package runenorm

// Buffer capacity violations panic in tests instead of being logged.
func init() {
	assertInvariants = true
}
