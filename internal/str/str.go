package str

// Short truncates a string to n bytes if necessary, marking the cut with
// "...". Strings from data files are ASCII, so cutting at a byte boundary is
// safe.
func Short(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
