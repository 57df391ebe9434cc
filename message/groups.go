package message

import "github.com/joaquinbejar/deribit-fix/codec"

// GroupEntry is one instance of a repeating group, as an ordered list
// of fields to be appended verbatim.
type GroupEntry []codec.Field

// EncodeGroup appends a standard FIX repeating group to msg: a NoXXX
// count field (countTag) followed by each entry's fields, in order.
// MassQuote and QuoteCancel use it when their standard dialect is
// selected; market data and security-list groups are decoded from this
// dialect by DecodeGroup.
func EncodeGroup(msg *codec.Message, countTag int, entries []GroupEntry) {
	msg.SetInt(countTag, len(entries))
	for _, e := range entries {
		for _, f := range e {
			msg.Add(f.Tag, f.Value)
		}
	}
}

// DecodeGroup splits fields into per-entry runs, where startTag marks
// the first field of each entry. Group boundaries in FIX are defined
// by which tag begins a new instance rather than by a fixed field
// count, so callers must know which tag that is for the group they're
// parsing.
func DecodeGroup(fields []codec.Field, startTag int) []GroupEntry {
	var groups []GroupEntry
	var current GroupEntry
	for _, f := range fields {
		if f.Tag == startTag {
			if current != nil {
				groups = append(groups, current)
			}
			current = GroupEntry{f}
		} else if current != nil {
			current = append(current, f)
		}
	}
	if current != nil {
		groups = append(groups, current)
	}
	return groups
}

// entryStride is the tag-number span reserved per entry in the
// Deribit tag-block dialect — wide enough to hold every field a quote
// entry carries today with room to grow (spec §9 Open Question:
// resolved in favor of a fixed stride over a registry, since Deribit's
// own gateway uses fixed offsets per the original implementation).
const entryStride = 10

// tagBlockTag computes the wire tag for field offset within entry
// index of a Deribit tag-block group rooted at base.
func tagBlockTag(base, index, offset int) int {
	return base + index*entryStride + offset
}

// EncodeTagBlock writes a Deribit-dialect repeating group: instead of
// a NoXXX count and repeated shared tags, each entry's fields live at
// base+index*stride+offset. fieldOffsets gives, in order, the offset
// for each field of entries[i][j].
func EncodeTagBlock(msg *codec.Message, base int, entries []GroupEntry, fieldOffsets []int) {
	for i, entry := range entries {
		for j, f := range entry {
			offset := j
			if j < len(fieldOffsets) {
				offset = fieldOffsets[j]
			}
			msg.Set(tagBlockTag(base, i, offset), f.Value)
		}
	}
}

// DecodeTagBlock reads back up to maxEntries of a Deribit tag-block
// group rooted at base, stopping at the first index with no fields
// present. fieldOffsets/fieldTags must be parallel slices mapping each
// logical field to its block offset and the tag it should be reported
// under in the returned GroupEntry.
func DecodeTagBlock(msg *codec.Message, base, maxEntries int, fieldOffsets, fieldTags []int) []GroupEntry {
	var out []GroupEntry
	for i := 0; i < maxEntries; i++ {
		var entry GroupEntry
		for k, offset := range fieldOffsets {
			v, ok := msg.Get(tagBlockTag(base, i, offset))
			if !ok {
				continue
			}
			entry = append(entry, codec.Field{Tag: fieldTags[k], Value: v})
		}
		if entry == nil {
			break
		}
		out = append(out, entry)
	}
	return out
}
