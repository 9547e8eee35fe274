// Package adb builds and runs the adb commands pidcat needs: the logcat
// stream itself, clearing the log buffer, the startup process listing and
// the foreground package lookup.
//
// Commands go through a Runner so tests can supply canned output.
package adb
