// datewindow 把相对日期短语解析为具体日期，并把时间段切分为报表窗口，
// 供数据抽取任务决定每次拉取的日期范围。
package main

import (
	"datewindow/cmd"
)

// main 是程序的入口函数，负责启动 CLI 命令执行。
func main() {
	cmd.Execute()
}
