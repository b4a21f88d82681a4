// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package pinboard

import (
	"net/url"
	"strings"

	"github.com/pinboat/pinboat"
)

// payload flattens a bookmark into the posts/add query parameters.
//
// Pinboard's `description` parameter is the bookmark title; the longer text
// goes into `extended`. The `extended` and `tags` keys are omitted when
// empty, the boolean flags are always sent as literal yes/no.
func payload(bk *pinboat.Bookmark, token string) url.Values {
	params := url.Values{}
	params.Set("url", bk.URL)
	params.Set("description", bk.Title)
	params.Set("auth_token", token)

	if bk.Desc != "" {
		params.Set("extended", bk.Desc)
	}

	if tags := NormalizeTags(bk.Tags); len(tags) > 0 {
		params.Set("tags", strings.Join(tags, " "))
	}

	params.Set("replace", yesNo(bk.Replace))
	params.Set("shared", yesNo(bk.Shared))
	params.Set("toread", yesNo(bk.ToRead))

	return params
}

// NormalizeTags strips spaces and commas from each tag and drops tags that
// end up empty. Pinboard tags may not contain either character.
func NormalizeTags(tags []string) []string {
	var result []string
	for _, tag := range tags {
		tag = strings.Map(func(r rune) rune {
			if r == ' ' || r == ',' {
				return -1
			}
			return r
		}, tag)

		if tag != "" {
			result = append(result, tag)
		}
	}

	return result
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
