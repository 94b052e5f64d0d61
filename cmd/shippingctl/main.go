// 配送方法一覧サービスのコマンドラインクライアント。
//
//	shippingctl list [--rf <version>]
//	shippingctl create --type air --title "Air Freight" --position 1 --image air.png
package main

import (
	"fmt"
	"os"

	"github.com/nao1215/shipping/cmd/shippingctl/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "shippingctl: %v\n", err)
		os.Exit(1)
	}
}
