package apiclient

// Navigator is the client's view of "where the user currently is" and how to
// send them somewhere else. In the browser-era client this was the window
// location; here the embedding application decides what navigation means (a
// TUI switching screens, a CLI printing a re-login hint, a test recording
// the call).
//
// On a 401 the client navigates to the login path unless CurrentPath
// already reports it.
type Navigator interface {
	CurrentPath() string
	NavigateTo(path string)
}

// NopNavigator ignores navigation. It is the default for embedders that
// handle forced logout purely through the returned error.
type NopNavigator struct{}

func (NopNavigator) CurrentPath() string { return "" }

func (NopNavigator) NavigateTo(path string) {}
