package main

import "github.com/huanfeng/localecsv/cmd"

func main() {
	cmd.Execute()
}
