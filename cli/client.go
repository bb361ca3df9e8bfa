package cli

import (
	"context"
	"crypto/tls"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	pb "github.com/frankonly/hashtree/api/hashtree"
)

var apiClient pb.HashTreeClient

// Client news or returns a hash tree client
func Client() (pb.HashTreeClient, error) {
	if apiClient == nil {
		var err error
		var conn *grpc.ClientConn

		if secureConn {
			conn, err = grpc.Dial(endpoint, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{})))
			if err != nil {
				return nil, fmt.Errorf("failed to establish connect(TLS) with %s: %w", endpoint, err)
			}
		} else {
			conn, err = grpc.Dial(endpoint, grpc.WithInsecure())
			if err != nil {
				return nil, fmt.Errorf("failed to establish insecure connect with %s: %w", endpoint, err)
			}
		}

		apiClient = pb.NewHashTreeClient(conn)
	}

	return apiClient, nil
}

func callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
