package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/frankonly/hashtree/api"
	pb "github.com/frankonly/hashtree/api/hashtree"
	"github.com/frankonly/hashtree/crypto"
	"github.com/frankonly/hashtree/merkle"
)

var remoteBundleOut string

func initRemote() {
	proveCmd.Flags().StringVar(&remoteBundleOut, "out", "", "write the proof bundle to file")
	proveLeafCmd.Flags().StringVar(&remoteBundleOut, "out", "", "write the proof bundle to file")
	checkCmd.Flags().StringVar(&bundleIn, "bundle", "", "proof bundle file")
	_ = checkCmd.MarkFlagRequired("bundle")
}

var (
	appendCmd = &cobra.Command{
		Use:   "append LEAF",
		Short: "Append a leaf to the server tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := Client()
			if err != nil {
				return err
			}

			ctx, cancel := callContext()
			defer cancel()

			appended, err := client.Append(ctx, &pb.Leaf{Leaf: []byte(args[0])})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", appended.Id, crypto.EncodeDigest(appended.Root))
			return nil
		},
	}

	searchCmd = &cobra.Command{
		Use:   "search LEAF",
		Short: "Find the id of a leaf on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := Client()
			if err != nil {
				return err
			}

			ctx, cancel := callContext()
			defer cancel()

			id, err := client.Search(ctx, &pb.Leaf{Leaf: []byte(args[0])})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id.Id)
			return nil
		},
	}

	digestCmd = &cobra.Command{
		Use:   "digest",
		Short: "Get the current root and size from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := Client()
			if err != nil {
				return err
			}

			ctx, cancel := callContext()
			defer cancel()

			digest, err := client.GetRoot(ctx, &pb.Empty{})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", crypto.EncodeDigest(digest.Root), digest.Size)
			return nil
		},
	}

	proveCmd = &cobra.Command{
		Use:   "prove ID LEAF",
		Short: "Get the proof of the leaf at ID from the server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %s: %w", args[0], err)
			}

			client, err := Client()
			if err != nil {
				return err
			}

			ctx, cancel := callContext()
			defer cancel()

			proof, err := client.GetProof(ctx, &pb.ID{Id: id})
			if err != nil {
				return err
			}

			return emitBundle(cmd, proof, []byte(args[1]))
		},
	}

	proveLeafCmd = &cobra.Command{
		Use:   "prove-leaf LEAF",
		Short: "Find a leaf on the server and get its proof",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := Client()
			if err != nil {
				return err
			}

			ctx, cancel := callContext()
			defer cancel()

			proof, err := client.GetProofByLeaf(ctx, &pb.Leaf{Leaf: []byte(args[0])})
			if err != nil {
				return err
			}

			return emitBundle(cmd, proof, []byte(args[0]))
		},
	}

	checkCmd = &cobra.Command{
		Use:   "check --bundle FILE",
		Short: "Ask the server to verify a proof bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := readBundle(bundleIn)
			if err != nil {
				return err
			}

			client, err := Client()
			if err != nil {
				return err
			}

			ctx, cancel := callContext()
			defer cancel()

			verdict, err := client.Verify(ctx, &pb.VerifyRequest{Root: bundle.Root, Leaf: bundle.Leaf, Path: api.ToPath(bundle.Proof)})
			if err != nil {
				return err
			}

			return reportVerdict(cmd.OutOrStdout(), verdict.Valid)
		},
	}
)

func emitBundle(cmd *cobra.Command, proof *pb.HashProof, leaf []byte) error {
	bundle := &merkle.Bundle{Index: proof.Id, Leaf: leaf, Root: proof.Root, Proof: api.FromPath(proof.Path)}
	printBundle(cmd.OutOrStdout(), bundle)

	if remoteBundleOut != "" {
		return writeBundle(remoteBundleOut, bundle)
	}

	return nil
}
