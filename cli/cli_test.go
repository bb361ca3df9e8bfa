package cli

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/frankonly/hashtree/api"
	pb "github.com/frankonly/hashtree/api/hashtree"
	"github.com/frankonly/hashtree/crypto"
	"github.com/frankonly/hashtree/merkle"
	"github.com/frankonly/hashtree/service"
	"github.com/frankonly/hashtree/storage"
)

func TestMain(m *testing.M) {
	if err := Init(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func run(args ...string) (string, error) {
	leafFile, bundleOut, bundleIn, remoteBundleOut = "", "", "", ""
	proofIndex = 0
	resetFlags(rootCmd)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags clears the parse state so a flag set by an earlier run does not
// satisfy a required flag in the next one
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) { f.Changed = false }
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestRequiredBundleFlag(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "proof.cbor")
	_, err := run("proof", "--out", path, "a", "b")
	r.NoError(err)

	out, err := run("verify", "--bundle", path)
	r.NoError(err)
	r.Equal("valid\n", out)

	_, err = run("verify")
	r.Error(err)
	r.Contains(err.Error(), `required flag(s) "bundle" not set`)
	r.False(errors.Is(err, errInvalidProof))

	_, err = run("check")
	r.Error(err)
	r.Contains(err.Error(), `required flag(s) "bundle" not set`)
}

func TestRootCommand(t *testing.T) {
	r := require.New(t)

	out, err := run("root", "a", "b", "c", "d")
	r.NoError(err)
	r.Equal("33376a3bd63e9993708a84ddfe6c28ae58b83505dd1fed711bd924ec5a6239f0\n", out)

	_, err = run("root")
	r.Error(err)
	r.True(errors.Is(err, merkle.ErrEmptyInput))
}

func TestRootFromFile(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "leaves.txt")
	r.NoError(os.WriteFile(path, []byte("a\nb\nc\n"), 0o644))

	out, err := run("root", "--file", path)
	r.NoError(err)

	tree, err := merkle.New([][]byte{[]byte("a"), []byte("b"), []byte("c")})
	r.NoError(err)
	r.Equal(crypto.EncodeDigest(tree.Root())+"\n", out)
}

func TestShowCommand(t *testing.T) {
	r := require.New(t)

	out, err := run("show", "a", "b", "c")
	r.NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	r.Len(lines, 3)
	r.Len(strings.Fields(lines[0]), 5)
	r.Len(strings.Fields(lines[1]), 4)
	r.Len(strings.Fields(lines[2]), 3)
}

func TestProofAndVerifyCommands(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "proof.cbor")
	out, err := run("proof", "--index", "2", "--out", path, "a", "b", "c", "d")
	r.NoError(err)
	r.Contains(out, "index: 2")
	r.Contains(out, "left")

	out, err = run("verify", "--bundle", path)
	r.NoError(err)
	r.Equal("valid\n", out)

	bundle, err := readBundle(path)
	r.NoError(err)
	bundle.Leaf = []byte("x")
	r.NoError(writeBundle(path, bundle))

	out, err = run("verify", "--bundle", path)
	r.True(errors.Is(err, errInvalidProof))
	r.Equal("invalid\n", out)

	// a bad index is a usage error, not a rejected proof
	_, err = run("proof", "--index", "4", "a", "b", "c", "d")
	r.Error(err)
	r.False(errors.Is(err, errInvalidProof))
}

func TestRemoteCommands(t *testing.T) {
	r := require.New(t)
	logger := zaptest.NewLogger(t).Sugar()

	svc, err := service.Open(storage.NewMemoryStore(), logger)
	r.NoError(err)

	lis := bufconn.Listen(1 << 20)
	grpcServer := grpc.NewServer()
	pb.RegisterHashTreeServer(grpcServer, api.NewServer(svc))
	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithInsecure())
	r.NoError(err)

	apiClient = pb.NewHashTreeClient(conn)
	defer func() {
		apiClient = nil
		_ = conn.Close()
		grpcServer.Stop()
		_ = svc.Close()
	}()

	for _, leaf := range []string{"a", "b", "c", "d"} {
		_, err := run("append", leaf)
		r.NoError(err)
	}

	out, err := run("digest")
	r.NoError(err)
	r.Equal("33376a3bd63e9993708a84ddfe6c28ae58b83505dd1fed711bd924ec5a6239f0 4\n", out)

	out, err = run("search", "c")
	r.NoError(err)
	r.Equal("2\n", out)

	path := filepath.Join(t.TempDir(), "proof.cbor")
	_, err = run("prove-leaf", "--out", path, "c")
	r.NoError(err)

	out, err = run("check", "--bundle", path)
	r.NoError(err)
	r.Equal("valid\n", out)

	out, err = run("verify", "--bundle", path)
	r.NoError(err)
	r.Equal("valid\n", out)

	_, err = run("prove", "--out", path, "1", "c")
	r.NoError(err)

	out, err = run("check", "--bundle", path)
	r.True(errors.Is(err, errInvalidProof))
	r.Equal("invalid\n", out)

	_, err = run("prove", "9", "c")
	r.Error(err)
	r.False(errors.Is(err, errInvalidProof))
}
