// Package testutil provides helpers shared by the redo package tests.
//
// Recipes in these tests are real shell scripts run through /bin/sh, so
// tests that use WriteRecipe exercise the same process boundary redo
// uses in production. Everything is created under t.TempDir() and
// cleaned up automatically.
package testutil
