package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/govalues/decimal"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
	bigdec "github.com/shabbyrobe/go-bigdec"
)

// This is a quick-and-dirty tool for eyeballing how fast powers eat into a
// fixed digit budget. It prints base^e for every e up to the limit, along
// with the digit count, the digits spent per unit of exponent (which tends
// to log10(base)) and the remainder by an optional modulus. It stops at the
// first power that no longer fits in 100 digits.

const usage = `Power table

Usage: <base> <maxexp> [<modulus>]`

type digits = [100]uint8

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	base, err := bigdec.FromString[digits](os.Args[1])
	if err != nil {
		return err
	}
	maxExp, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return err
	}

	modulus := bigdec.Zero[digits]()
	if len(os.Args) > 3 {
		modulus, err = bigdec.FromString[digits](os.Args[3])
		if err != nil {
			return err
		}
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Power").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)
	tab.Header("Digits").SetAlign(tabulate.MR)
	tab.Header("Digits/e").SetAlign(tabulate.MR)
	if !modulus.IsZero() {
		tab.Header("Mod " + modulus.String()).SetAlign(tabulate.MR)
	}

	for e := 0; e <= maxExp; e++ {
		exp, err := bigdec.FromInt[digits](e)
		if err != nil {
			return err
		}

		row := tab.Row()
		row.Column(base.String() + superscript.Itoa(e))

		v, err := base.Pow(exp)
		if errors.Is(err, bigdec.ErrCapacityExceeded) {
			row.Column("overflow").SetFormat(tabulate.FmtItalic)
			row.Column(fmt.Sprintf("> %d", v.Cap()))
			break
		} else if err != nil {
			return err
		}

		row.Column(v.String())
		row.Column(strconv.Itoa(v.Len()))
		rate, err := digitRate(v.Len(), e)
		if err != nil {
			return err
		}
		row.Column(rate)
		if !modulus.IsZero() {
			r, err := v.Rem(modulus)
			if err != nil {
				return err
			}
			row.Column(r.String()).SetFormat(tabulate.FmtBold)
		}
	}

	tab.Print(os.Stdout)
	return nil
}

// digitRate returns n / e to three places, or "-" for e == 0.
func digitRate(n, e int) (string, error) {
	if e == 0 {
		return "-", nil
	}
	num, err := decimal.New(int64(n), 0)
	if err != nil {
		return "", err
	}
	den, err := decimal.New(int64(e), 0)
	if err != nil {
		return "", err
	}
	q, err := num.Quo(den)
	if err != nil {
		return "", err
	}
	return q.Round(3).Trim(0).String(), nil
}
