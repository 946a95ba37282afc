package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator issues unique int64 surrogate keys (order_id, return_id,
// payment_id and so on). Snowflake keeps them caller-visible integers
// while guaranteeing uniqueness per node.
type Generator struct {
	node *snowflake.Node
}

func New(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("can't create snowflake node: %w", err)
	}
	return &Generator{node: node}, nil
}

func (g *Generator) Next() int64 {
	return g.node.Generate().Int64()
}
