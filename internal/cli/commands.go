// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fmatrix/matrix"
)

// operand holds the flags describing one matrix.
type operand struct {
	rows, cols int
	data       []float32
}

// bindOperand registers --rows<suffix>, --cols<suffix> and --data<suffix> on cmd.
func bindOperand(cmd *cobra.Command, op *operand, suffix, what string) {
	cmd.Flags().IntVar(&op.rows, "rows"+suffix, 0, "number of rows of the "+what)
	cmd.Flags().IntVar(&op.cols, "cols"+suffix, 0, "number of columns of the "+what)
	cmd.Flags().Float32SliceVar(&op.data, "data"+suffix, nil,
		"row-major values of the "+what+" (rows*cols values; omit for identity/zeros)")
	_ = cmd.MarkFlagRequired("rows" + suffix)
	_ = cmd.MarkFlagRequired("cols" + suffix)
}

// build materializes the operand. Unlike matrix.Init, a supplied --data must
// hold exactly rows*cols values.
func (a *app) build(op operand, name string) (*matrix.Matrix, error) {
	var (
		m   *matrix.Matrix
		err error
	)
	if len(op.data) == 0 {
		m, err = matrix.New(op.rows, op.cols)
	} else {
		m, err = matrix.NewFromData(op.rows, op.cols, op.data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.log.Debug("operand built", "name", name, "rows", op.rows, "cols", op.cols, "values", len(op.data))

	return m, nil
}

func (a *app) identityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "identity N",
		Short: "Print the N×N identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[0], err)
			}
			m, err := matrix.NewIdentity(n)
			if err != nil {
				return err
			}
			defer m.Destroy()

			return m.Print(a.out)
		},
	}
}

func (a *app) transposeCommand() *cobra.Command {
	var op operand
	cmd := &cobra.Command{
		Use:   "transpose",
		Short: "Print the transpose of a matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.build(op, "matrix")
			if err != nil {
				return err
			}
			defer m.Destroy()
			t := matrix.Transpose(m)
			defer t.Destroy()
			a.log.Debug("transposed", "rows", t.Rows(), "cols", t.Cols())

			return t.Print(a.out)
		},
	}
	bindOperand(cmd, &op, "", "matrix")

	return cmd
}

func (a *app) scaleCommand() *cobra.Command {
	var (
		op operand
		by float32
	)
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Multiply every element of a matrix by a scalar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.build(op, "matrix")
			if err != nil {
				return err
			}
			defer m.Destroy()
			m.ScalarMultiply(by)
			a.log.Debug("scaled", "by", by)

			return m.Print(a.out)
		},
	}
	bindOperand(cmd, &op, "", "matrix")
	cmd.Flags().Float32Var(&by, "by", 1, "scalar multiplier")

	return cmd
}

func (a *app) multiplyCommand() *cobra.Command {
	var lhs, rhs operand
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Print the product of two matrices",
		Long: `Print the product of two matrices. The left operand is given with
--rows/--cols/--data, the right operand with --rows2/--cols2/--data2.
The command fails when the left column count differs from the right row count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.build(lhs, "left operand")
			if err != nil {
				return err
			}
			defer l.Destroy()
			r, err := a.build(rhs, "right operand")
			if err != nil {
				return err
			}
			defer r.Destroy()

			p, err := matrix.Multiply(l, r)
			if err != nil {
				return err
			}
			defer p.Destroy()
			a.log.Debug("multiplied", "rows", p.Rows(), "cols", p.Cols())

			return p.Print(a.out)
		},
	}
	bindOperand(cmd, &lhs, "", "left operand")
	bindOperand(cmd, &rhs, "2", "right operand")

	return cmd
}

func (a *app) getCommand() *cobra.Command {
	var (
		op       operand
		row, col int
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print one cell (1-based row and column) and the accessor status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.build(op, "matrix")
			if err != nil {
				return err
			}
			defer m.Destroy()

			v, err := m.GetCell(row, col)
			st, _ := matrix.StatusOf(err)
			if err != nil {
				fmt.Fprintln(a.out, st)
				return err
			}
			_, err = fmt.Fprintf(a.out, "%s %8.3f\n", st, v)

			return err
		},
	}
	bindOperand(cmd, &op, "", "matrix")
	cmd.Flags().IntVar(&row, "row", 1, "1-based row index")
	cmd.Flags().IntVar(&col, "col", 1, "1-based column index")

	return cmd
}
