// Package process cleans up the headless browser process tree that
// go-rod's launcher leaves behind when a conversion is cancelled.
package process
