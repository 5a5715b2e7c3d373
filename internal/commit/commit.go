// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

// Package commit defines the commit record consumed by every statistic.
package commit

import (
	"time"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// Record is the read-only view of a single commit that statistics consume.
// An empty AuthorName or AuthorEmail means the value was absent.
type Record struct {
	Seconds       int64 // seconds since the Unix epoch
	OffsetMinutes int32 // committer UTC offset, east positive
	AuthorName    string
	AuthorEmail   string
}

// FromObject builds a Record from a go-git commit. The timestamp is the
// committer time; name and email come from the author signature.
func FromObject(c *object.Commit) Record {
	when := c.Committer.When
	_, offset := when.Zone()
	return Record{
		Seconds:       when.Unix(),
		OffsetMinutes: int32(offset / 60),
		AuthorName:    c.Author.Name,
		AuthorEmail:   c.Author.Email,
	}
}

// LocalTime returns the commit timestamp in the record's own fixed offset,
// independent of the process time zone.
func (r Record) LocalTime() time.Time {
	zone := time.FixedZone("", int(r.OffsetMinutes)*60)
	return time.Unix(r.Seconds, 0).In(zone)
}
