// Copyright 2017 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// ToStringSlice converts a set to a typed string slice.
func ToStringSlice(set mapset.Set) []string {
	if set == nil {
		return nil
	}
	slice := set.ToSlice()
	result := make([]string, len(slice))
	for i, item := range slice {
		result[i] = item.(string)
	}
	return result
}

// NewStringSet creates a set from the given strings.
func NewStringSet(items ...string) mapset.Set {
	set := mapset.NewSet()
	for _, item := range items {
		set.Add(item)
	}
	return set
}

// SortedStrings returns the set's strings in ascending order.
func SortedStrings(set mapset.Set) []string {
	result := ToStringSlice(set)
	sort.Strings(result)
	return result
}
