package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/frankonly/hashtree/crypto"
	"github.com/frankonly/hashtree/merkle"
)

var (
	leafFile   string
	proofIndex uint64
	bundleOut  string
	bundleIn   string
)

func initLocal() {
	for _, cmd := range []*cobra.Command{rootLocalCmd, showCmd, proofCmd} {
		cmd.Flags().StringVar(&leafFile, "file", "", "read leaves from file, one per line")
	}

	proofCmd.Flags().Uint64Var(&proofIndex, "index", 0, "index of the leaf to prove")
	proofCmd.Flags().StringVar(&bundleOut, "out", "", "write the proof bundle to file")
	verifyCmd.Flags().StringVar(&bundleIn, "bundle", "", "proof bundle file")
	_ = verifyCmd.MarkFlagRequired("bundle")
}

var (
	rootLocalCmd = &cobra.Command{
		Use:   "root [LEAF...]",
		Short: "Print the root of a tree built from leaves",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := buildTree(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), crypto.EncodeDigest(tree.Root()))
			return nil
		},
	}

	showCmd = &cobra.Command{
		Use:   "show [LEAF...]",
		Short: "Print every layer of a tree built from leaves",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := buildTree(args)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tree.String())
			return nil
		},
	}

	proofCmd = &cobra.Command{
		Use:   "proof --index N [LEAF...]",
		Short: "Print the proof of one leaf of a tree built from leaves",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, leaves, err := buildTree(args)
			if err != nil {
				return err
			}

			if proofIndex >= uint64(len(leaves)) {
				return fmt.Errorf("index %d out of range, tree has %d leaves", proofIndex, len(leaves))
			}

			bundle, err := tree.NewBundle(proofIndex, leaves[proofIndex])
			if err != nil {
				return err
			}

			printBundle(cmd.OutOrStdout(), bundle)
			if bundleOut != "" {
				return writeBundle(bundleOut, bundle)
			}

			return nil
		},
	}

	verifyCmd = &cobra.Command{
		Use:   "verify --bundle FILE",
		Short: "Verify a proof bundle offline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := readBundle(bundleIn)
			if err != nil {
				return err
			}

			return reportVerdict(cmd.OutOrStdout(), bundle.Verify())
		},
	}
)

func buildTree(args []string) (*merkle.Tree, [][]byte, error) {
	leaves := make([][]byte, 0, len(args))
	for _, arg := range args {
		leaves = append(leaves, []byte(arg))
	}

	if leafFile != "" {
		fromFile, err := readLeaves(leafFile)
		if err != nil {
			return nil, nil, err
		}
		leaves = append(leaves, fromFile...)
	}

	tree, err := merkle.New(leaves)
	if err != nil {
		return nil, nil, fmt.Errorf("no leaves given: %w", err)
	}

	return tree, leaves, nil
}

func readLeaves(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var leaves [][]byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		leaves = append(leaves, append([]byte(nil), scanner.Bytes()...))
	}

	return leaves, scanner.Err()
}

func printBundle(w io.Writer, bundle *merkle.Bundle) {
	fmt.Fprintf(w, "index: %d\n", bundle.Index)
	fmt.Fprintf(w, "root:  %s\n", crypto.EncodeDigest(bundle.Root))
	for i, node := range bundle.Proof {
		side := "right"
		if node.IsLeft {
			side = "left"
		}
		fmt.Fprintf(w, "  [%d] %-5s %s\n", i, side, crypto.EncodeDigest(node.Hash))
	}
}

func writeBundle(path string, bundle *merkle.Bundle) error {
	data, err := bundle.MarshalBinary()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func readBundle(path string) (*merkle.Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	bundle := &merkle.Bundle{}
	if err := bundle.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return bundle, nil
}

func reportVerdict(w io.Writer, valid bool) error {
	if !valid {
		fmt.Fprintln(w, "invalid")
		return errInvalidProof
	}

	fmt.Fprintln(w, "valid")
	return nil
}
