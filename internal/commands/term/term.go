package term

// ANSI escape sequences used when printing to the terminal
const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	Green          = "\x1b[32m"
	Red            = "\x1b[31m"
	BackgroundBlue = "\x1b[44m"
)
