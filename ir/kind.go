package ir

import "strings"

// Kind is the rendering category of a node.
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindScalar
	KindSequence
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return "<unknown kind>"
	}
}

// Classify never fails: nil and unknown types are KindAbsent.
func Classify(y *Node) Kind {
	if y == nil {
		return KindAbsent
	}
	switch y.Type {
	case NullType:
		return KindNull
	case StringType, NumberType, BoolType:
		return KindScalar
	case ArrayType:
		return KindSequence
	case ObjectType:
		return KindRecord
	default:
		return KindAbsent
	}
}

// Role is what a record entry becomes in markup, decided by its key.
type Role int

const (
	RoleChild Role = iota
	RoleAttribute
	RoleComment
	RoleProcessingInstruction
	RoleFragment
	// RoleUnnamed is the empty key. Older documents use it as the fragment
	// key; encoders decide whether to honour that.
	RoleUnnamed
)

const (
	AttributePrefix = "@"
	FragmentKey     = "#"
	CommentKey      = "!"
	PIKey           = "?"
)

func (r Role) String() string {
	switch r {
	case RoleChild:
		return "child"
	case RoleAttribute:
		return "attribute"
	case RoleComment:
		return "comment"
	case RoleProcessingInstruction:
		return "processing-instruction"
	case RoleFragment:
		return "fragment"
	case RoleUnnamed:
		return "unnamed"
	default:
		return "<unknown role>"
	}
}

func RoleOf(key string) Role {
	switch key {
	case "":
		return RoleUnnamed
	case FragmentKey:
		return RoleFragment
	case CommentKey:
		return RoleComment
	case PIKey:
		return RoleProcessingInstruction
	}
	if strings.HasPrefix(key, AttributePrefix) {
		return RoleAttribute
	}
	return RoleChild
}

// Entry is a record entry with its key decoded. For attributes Name has the
// '@' removed (empty for the bare form), for children it is the tag name.
type Entry struct {
	Role  Role
	Key   string
	Name  string
	Value *Node
}

func EntryOf(key string, val *Node) Entry {
	e := Entry{
		Role:  RoleOf(key),
		Key:   key,
		Value: val,
	}
	switch e.Role {
	case RoleAttribute:
		e.Name = key[len(AttributePrefix):]
	case RoleChild:
		e.Name = key
	}
	return e
}

// Entries decodes the keys of a record in order. It returns nil for
// anything but a record. A key without a value has a nil (absent) Value.
func (y *Node) Entries() []Entry {
	if Classify(y) != KindRecord {
		return nil
	}
	res := make([]Entry, len(y.Fields))
	for i, f := range y.Fields {
		key := ""
		if f != nil {
			key = f.String
		}
		var v *Node
		if i < len(y.Values) {
			v = y.Values[i]
		}
		res[i] = EntryOf(key, v)
	}
	return res
}
