package api

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/frankonly/hashtree/api/hashtree"
	"github.com/frankonly/hashtree/merkle"
	"github.com/frankonly/hashtree/service"
	"github.com/frankonly/hashtree/storage"
)

type Server struct {
	pb.UnimplementedHashTreeServer

	service *service.Service
}

func NewServer(svc *service.Service) *Server {
	return &Server{service: svc}
}

func (s Server) Append(_ context.Context, in *pb.Leaf) (*pb.Appended, error) {
	id, root, err := s.service.Append(in.Leaf)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to append new leaf")
	}

	return &pb.Appended{Id: id, Root: root}, nil
}

func (s Server) GetRoot(context.Context, *pb.Empty) (*pb.Digest, error) {
	root, err := s.service.Root()
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.Digest{Root: root, Size: s.service.Size()}, nil
}

func (s Server) GetProof(_ context.Context, id *pb.ID) (*pb.HashProof, error) {
	proof, root, err := s.service.Proof(id.Id)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.HashProof{Id: id.Id, Root: root, Path: ToPath(proof)}, nil
}

func (s Server) GetProofByLeaf(_ context.Context, in *pb.Leaf) (*pb.HashProof, error) {
	id, proof, root, err := s.service.ProofByLeaf(in.Leaf)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.HashProof{Id: id, Root: root, Path: ToPath(proof)}, nil
}

func (s Server) Search(_ context.Context, in *pb.Leaf) (*pb.ID, error) {
	id, err := s.service.Search(in.Leaf)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.ID{Id: id}, nil
}

// Verify never fails on a bad proof, the verdict is the answer
func (s Server) Verify(_ context.Context, in *pb.VerifyRequest) (*pb.Verdict, error) {
	return &pb.Verdict{Valid: s.service.Verify(in.Root, in.Leaf, FromPath(in.Path))}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, storage.ErrOutOfRange), errors.Is(err, merkle.ErrOutOfRange):
		return status.Error(codes.OutOfRange, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, storage.ErrEmpty):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, storage.ErrInvalidDigest):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// UnaryLogger logs every unary call with its latency and status code
func UnaryLogger(logger *zap.SugaredLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		if code == codes.Internal || code == codes.Unknown {
			logger.Errorw("rpc failed", "method", info.FullMethod, "code", code.String(), "elapsed", time.Since(start), "error", err)
		} else {
			logger.Debugw("rpc", "method", info.FullMethod, "code", code.String(), "elapsed", time.Since(start))
		}

		return resp, err
	}
}
