// Package version implements the identifier and version-vector arithmetic
// that anchors every item in a sequence-CRDT document: an (agent, seq)
// pair per operation, and a per-agent high-water mark summarizing which
// operations a document has already integrated.
package version

import "fmt"

// Agent is an opaque identifier for the author of an operation.
type Agent string

// ID identifies a single operation: the agent that authored it and the
// per-agent sequence number assigned when it was created. Operations from
// the same agent must be integrated in strictly increasing Seq order.
type ID struct {
	Agent Agent
	Seq   int
}

// String renders an ID as "agent:seq", used in error messages and logs.
func (id ID) String() string {
	return fmt.Sprintf("%s:%d", id.Agent, id.Seq)
}

// Less orders IDs lexicographically by (Agent, Seq). This is the tie-break
// total order every integration algorithm in package sequence falls back
// to when two concurrent items anchor at the same position.
func (id ID) Less(other ID) bool {
	if id.Agent != other.Agent {
		return id.Agent < other.Agent
	}
	return id.Seq < other.Seq
}

// Vector maps an agent to the highest Seq of that agent's operations a
// document has integrated. An absent agent has observed seq -1.
type Vector map[Agent]int

// Highest returns the highest Seq observed for agent, or -1 if none.
func (v Vector) Highest(agent Agent) int {
	if seq, ok := v[agent]; ok {
		return seq
	}
	return -1
}

// Contains reports whether id has already been integrated according to v.
func (v Vector) Contains(id ID) bool {
	return v.Highest(id.Agent) >= id.Seq
}

// Observe records that id has been integrated, advancing the agent's
// high-water mark. Callers are expected to have already verified id does
// not leave a gap (the OutOfOrder check lives in package sequence, right
// before the one call site that matters; Observe itself just folds in
// the new high-water mark.
func (v Vector) Observe(id ID) {
	if id.Seq > v.Highest(id.Agent) {
		v[id.Agent] = id.Seq
	}
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for agent, seq := range v {
		out[agent] = seq
	}
	return out
}
