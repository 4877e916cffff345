// Package format names the input notations toxml reads documents from.
package format
