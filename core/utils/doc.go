// Package utils provides common helpers shared by the Steam and Notion packages:
// conversions of loosely typed JSON values and decimal rounding.
package utils
