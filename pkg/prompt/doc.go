// Package prompt collects generation settings interactively. The Driver
// interface hides the terminal so flows can be tested with scripted answers;
// NewSurveyDriver provides the terminal implementation.
package prompt
