// Package testdoubles provides spies for the logger interfaces of the infrastructure packages.
package testdoubles
