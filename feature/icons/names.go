package icons

// CharacterNames lists the characters whose equip icon the catalogue knows.
var CharacterNames = []string{
	"开拓者", "白露", "符玄", "青雀", "素裳", "停云", "驭空", "玲可",
	"克拉拉", "佩拉", "杰帕德", "希露瓦", "希儿", "布洛妮娅", "艾丝妲", "银狼",
	"卡芙卡", "丹恒", "三月七", "藿藿", "阮•梅", "黑天鹅", "真理", "黑塔",
	"花火", "黄泉", "砂金", "知更鸟", "托帕&账账", "加拉赫", "流萤", "姬子",
	"瓦尔特",
}

var knownNames = func() map[string]struct{} {
	m := make(map[string]struct{}, len(CharacterNames))
	for _, n := range CharacterNames {
		m[n] = struct{}{}
	}
	return m
}()

// IsKnown reports whether name is a catalogue character.
func IsKnown(name string) bool {
	_, ok := knownNames[name]
	return ok
}
