package tags

import "github.com/yohamta/donburi"

var (
	Effect = donburi.NewTag().SetName("Effect")
	Flash  = donburi.NewTag().SetName("Flash")
)
