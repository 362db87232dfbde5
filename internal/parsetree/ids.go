package parsetree

type (
	// NodeID identifies a node within one Tree and its clones. Ids
	// start at 1 and are never reused.
	NodeID uint32
	// NodeKind classifies a node; the value space is owned by the
	// grammar driver, this package never interprets it.
	NodeKind uint16
)

// NoNodeID is the absent-node sentinel (no parent, no root).
const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
