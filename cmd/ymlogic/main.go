// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import "github.com/yusuke-matsunaga/ym-logic/cmd/ymlogic/cmd"

func main() {
	cmd.Execute()
}
