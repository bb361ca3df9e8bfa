package api

import (
	pb "github.com/frankonly/hashtree/api/hashtree"
	"github.com/frankonly/hashtree/merkle"
)

// ToPath converts a proof to its wire form
func ToPath(proof merkle.Proof) []*pb.ProofStep {
	path := make([]*pb.ProofStep, len(proof))
	for i, node := range proof {
		path[i] = &pb.ProofStep{Hash: node.Hash, IsLeft: node.IsLeft}
	}
	return path
}

// FromPath converts a wire path back to a proof
func FromPath(path []*pb.ProofStep) merkle.Proof {
	proof := make(merkle.Proof, 0, len(path))
	for _, step := range path {
		if step == nil {
			continue
		}
		proof = append(proof, merkle.ProofNode{Hash: step.GetHash(), IsLeft: step.GetIsLeft()})
	}
	return proof
}
