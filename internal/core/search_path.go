package core

// PathListSeparator returns the PATH delimiter for a GOOS value.
func PathListSeparator(goos string) string {
	if goos == "windows" {
		return ";"
	}
	return ":"
}

// AppendSearchPath appends dirs to current in order. Entries are never
// deduplicated. When current is empty the first dir starts the list.
func AppendSearchPath(current string, dirs []string, sep string) string {
	path := current
	for _, dir := range dirs {
		if path == "" {
			path = dir
			continue
		}
		path = path + sep + dir
	}
	return path
}
