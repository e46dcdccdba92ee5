package main

import (
	"io"
	"os"
	"singlyLinkedList/gates/storage/list"
	"singlyLinkedList/pkg"

	"github.com/davecgh/go-spew/spew"
)

// dumper prints the whole node structure: no addresses so the output is
// stable, and no String() so the list is not collapsed to [1, 2, 3].
var dumper = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

func main() {
	wErr := pkg.NewWrappedError("main()")
	if err := run(os.Stdout); err != nil {
		wErr.Specify(err, "run(os.Stdout)").LogError()
		os.Exit(1)
	}
}

// run builds the list 1 -> 2 -> 3 and writes its debug dump to w
func run(w io.Writer) error {
	l := list.New[int]()
	l.Push(1)
	l.Push(2)
	l.Push(3)

	_, err := io.WriteString(w, dumper.Sdump(l))
	return err
}
