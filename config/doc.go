// Package config contains the flat key - value settings used to configure the engines,
// the boolean parsing rules for the setting values and the settings file readers.
package config
