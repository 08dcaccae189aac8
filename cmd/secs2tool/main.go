// Command secs2tool decodes, encodes and inspects SECS-II items.
//
//	secs2tool decode 01 02 41 01 61 A5 01 07
//	secs2tool decode --yaml < dump.hex
//	secs2tool encode '<L <A "a"> <U1 7>>'
//	secs2tool inspect --config secs2tool.toml 01 02 41 01 61 A5 01 07
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
