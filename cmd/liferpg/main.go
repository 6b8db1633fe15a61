// Life RPG turns daily habits into quests with XP, levels, and buffs.
// Usage: liferpg [--plain] [--script <file>] [--name <player>] [--seed <n>] [command]
package main

import "github.com/nathoo/liferpg/cmd/liferpg/root"

func main() {
	root.Execute()
}
