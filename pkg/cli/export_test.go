package cli

var (
	RenderText   = renderText
	RenderJSON   = renderJSON
	CheckResults = checkResults
	ParseFailOn  = parseFailOn
)
