package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	IconEye     = "" // eye
	IconEyeOff  = "" // eye slash
	IconWifi    = "" // wifi
	IconPlug    = "" // plug
	IconPlay    = "" // play
	IconPause   = "" // pause
	IconConfig  = "" // config
	IconWarning = "" // warning
)
