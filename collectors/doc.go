// SPDX-License-Identifier: Apache-2.0

// Package collectors provides ready-made [fold.Collector] values.
//
// Every function returns a new collector; collectors hold no state between
// passes, so they can be stored in variables and reused:
//
//	var wordStats = fold.Combine2(
//	    collectors.Histogram[string](collectors.Top, 5),
//	    collectors.RangeBy(func(w string) int { return len(w) }),
//	)
//
// Collectors that can know their answer early (such as [First], [Some] or
// [Contains]) escape, which stops the driving sequence.
//
// Collectors over possibly empty input that have no natural neutral result
// return a [fold.Maybe]; use [Or] or [fold.Maybe.Require] to supply a fallback
// or turn absence into [fold.ErrEmptyInput].
package collectors
