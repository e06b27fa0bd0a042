package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# priotasks configuration file
# Values can be overridden by PRIOTASKS_* environment variables or CLI flags

# Priority preselected in the creation form (High, Medium, Low)
default_priority = "Low"

# Initial ordering of active tasks: date or priority, asc or desc
sort_by = "date"
sort_order = "asc"

# Go time layout used to display deadlines
deadline_layout = "2006-01-02 15:04"

# Session log directory (supports ~ expansion); empty disables the log file
log_dir = ""
log_level = "info"        # debug, info, warn, error
log_format = "text"       # text, json, logfmt
log_timestamps = true
log_caller = false

# Which panels start expanded
[sections]
form = false
active = true
completed = true

# Priority colours (hex or ANSI numbers)
[colors]
high = "#ff5f87"
medium = "#ffaf00"
low = "#5fd787"
`
}
