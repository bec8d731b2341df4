package vocab

import "relic-manager/feature/relic/models"

// Piece is one concrete relic piece as displayed in game.
type Piece struct {
	Name string
	Set  models.SetName
	Slot models.Slot
}

// pieces is the single source for both the set and the slot lookups.
// Cavern sets list head, hands, body, feet; planar sets list sphere, rope.
var pieces = []Piece{
	// PasserbyofWanderingCloud
	{"过客的逢春木簪", models.PasserbyofWanderingCloud, models.Head},
	{"过客的游龙臂鞲", models.PasserbyofWanderingCloud, models.Hands},
	{"过客的残绣风衣", models.PasserbyofWanderingCloud, models.Body},
	{"过客的冥途游履", models.PasserbyofWanderingCloud, models.Feet},
	// MusketeerofWildWheat
	{"快枪手的野穗毡帽", models.MusketeerofWildWheat, models.Head},
	{"快枪手的粗革手套", models.MusketeerofWildWheat, models.Hands},
	{"快枪手的猎风披肩", models.MusketeerofWildWheat, models.Body},
	{"快枪手的铆钉马靴", models.MusketeerofWildWheat, models.Feet},
	// KnightofPurityPalace
	{"圣骑的宽恕盔面", models.KnightofPurityPalace, models.Head},
	{"圣骑的沉默誓环", models.KnightofPurityPalace, models.Hands},
	{"圣骑的肃穆胸甲", models.KnightofPurityPalace, models.Body},
	{"圣骑的秩序铁靴", models.KnightofPurityPalace, models.Feet},
	// HunterofGlacialForest
	{"雪猎的荒神兜帽", models.HunterofGlacialForest, models.Head},
	{"雪猎的巨蜥手套", models.HunterofGlacialForest, models.Hands},
	{"雪猎的冰龙披风", models.HunterofGlacialForest, models.Body},
	{"雪猎的鹿皮软靴", models.HunterofGlacialForest, models.Feet},
	// ChampionofStreetwiseBoxing
	{"拳王的冠军护头", models.ChampionofStreetwiseBoxing, models.Head},
	{"拳王的重炮拳套", models.ChampionofStreetwiseBoxing, models.Hands},
	{"拳王的贴身护胸", models.ChampionofStreetwiseBoxing, models.Body},
	{"拳王的弧步战靴", models.ChampionofStreetwiseBoxing, models.Feet},
	// GuardofWutheringSnow
	{"铁卫的铸铁面盔", models.GuardofWutheringSnow, models.Head},
	{"铁卫的银鳞手甲", models.GuardofWutheringSnow, models.Hands},
	{"铁卫的旧制军服", models.GuardofWutheringSnow, models.Body},
	{"铁卫的白银护胫", models.GuardofWutheringSnow, models.Feet},
	// FiresmithofLavaForging
	{"火匠的黑耀目镜", models.FiresmithofLavaForging, models.Head},
	{"火匠的御火戒指", models.FiresmithofLavaForging, models.Hands},
	{"火匠的阻燃围裙", models.FiresmithofLavaForging, models.Body},
	{"火匠的合金义肢", models.FiresmithofLavaForging, models.Feet},
	// GeniusofBrilliantStars
	{"天才的超距遥感", models.GeniusofBrilliantStars, models.Head},
	{"天才的频变捕手", models.GeniusofBrilliantStars, models.Hands},
	{"天才的元域深潜", models.GeniusofBrilliantStars, models.Body},
	{"天才的引力漫步", models.GeniusofBrilliantStars, models.Feet},
	// BandofSizzlingThunder
	{"乐队的偏光墨镜", models.BandofSizzlingThunder, models.Head},
	{"乐队的巡演手绳", models.BandofSizzlingThunder, models.Hands},
	{"乐队的钉刺皮衣", models.BandofSizzlingThunder, models.Body},
	{"乐队的铆钉短靴", models.BandofSizzlingThunder, models.Feet},
	// EagleofTwilightLine
	{"翔鹰的长喙头盔", models.EagleofTwilightLine, models.Head},
	{"翔鹰的鹰击指环", models.EagleofTwilightLine, models.Hands},
	{"翔鹰的翼装束带", models.EagleofTwilightLine, models.Body},
	{"翔鹰的绒羽绑带", models.EagleofTwilightLine, models.Feet},
	// ThiefofShootingMeteor
	{"怪盗的千人假面", models.ThiefofShootingMeteor, models.Head},
	{"怪盗的绘纹手套", models.ThiefofShootingMeteor, models.Hands},
	{"怪盗的纤钢爪钩", models.ThiefofShootingMeteor, models.Body},
	{"怪盗的流星快靴", models.ThiefofShootingMeteor, models.Feet},
	// WastelanderofBanditryDesert
	{"废土客的呼吸面罩", models.WastelanderofBanditryDesert, models.Head},
	{"废土客的荒漠终端", models.WastelanderofBanditryDesert, models.Hands},
	{"废土客的修士长袍", models.WastelanderofBanditryDesert, models.Body},
	{"废土客的动力腿甲", models.WastelanderofBanditryDesert, models.Feet},
	// SpaceSealingStation
	{"「黑塔」的空间站点", models.SpaceSealingStation, models.PlanarSphere},
	{"「黑塔」的漫历轨迹", models.SpaceSealingStation, models.LinkRope},
	// FleetoftheAgeless
	{"罗浮仙舟的天外楼船", models.FleetoftheAgeless, models.PlanarSphere},
	{"罗浮仙舟的建木枝蔓", models.FleetoftheAgeless, models.LinkRope},
	// PanGalacticCommercialEnterprise
	{"公司的巨构总部", models.PanGalacticCommercialEnterprise, models.PlanarSphere},
	{"公司的贸易航道", models.PanGalacticCommercialEnterprise, models.LinkRope},
	// BelobogoftheArchitects
	{"贝洛伯格的存护堡垒", models.BelobogoftheArchitects, models.PlanarSphere},
	{"贝洛伯格的铁卫防线", models.BelobogoftheArchitects, models.LinkRope},
	// CelestialDifferentiator
	{"螺丝星的机械烈阳", models.CelestialDifferentiator, models.PlanarSphere},
	{"螺丝星的环星孔带", models.CelestialDifferentiator, models.LinkRope},
	// InertSalsotto
	{"萨尔索图的移动城市", models.InertSalsotto, models.PlanarSphere},
	{"萨尔索图的晨昏界线", models.InertSalsotto, models.LinkRope},
	// TaliaKingdomofBanditry
	{"塔利亚的钉壳小镇", models.TaliaKingdomofBanditry, models.PlanarSphere},
	{"塔利亚的裸皮电线", models.TaliaKingdomofBanditry, models.LinkRope},
	// SprightlyVonwacq
	{"翁瓦克的诞生之岛", models.SprightlyVonwacq, models.PlanarSphere},
	{"翁瓦克的环岛海岸", models.SprightlyVonwacq, models.LinkRope},
	// RutilantArena
	{"泰科铵的镭射球场", models.RutilantArena, models.PlanarSphere},
	{"泰科铵的弧光赛道", models.RutilantArena, models.LinkRope},
	// BrokenKeel
	{"伊须磨洲的残船鲸落", models.BrokenKeel, models.PlanarSphere},
	{"伊须磨洲的坼裂缆索", models.BrokenKeel, models.LinkRope},
	// LongevousDisciple
	{"莳者的复明义眼", models.LongevousDisciple, models.Head},
	{"莳者的机巧木手", models.LongevousDisciple, models.Hands},
	{"莳者的承露羽衣", models.LongevousDisciple, models.Body},
	{"莳者的天人丝履", models.LongevousDisciple, models.Feet},
	// MessengerTraversingHackerspace
	{"信使的全息目镜", models.MessengerTraversingHackerspace, models.Head},
	{"信使的百变义手", models.MessengerTraversingHackerspace, models.Hands},
	{"信使的密信挎包", models.MessengerTraversingHackerspace, models.Body},
	{"信使的酷跑板鞋", models.MessengerTraversingHackerspace, models.Feet},
	// TheAshblazingGrandDuke
	{"大公的冥焰冠冕", models.TheAshblazingGrandDuke, models.Head},
	{"大公的绒火指套", models.TheAshblazingGrandDuke, models.Hands},
	{"大公的蒙恩长袍", models.TheAshblazingGrandDuke, models.Body},
	{"大公的绅雅礼靴", models.TheAshblazingGrandDuke, models.Feet},
	// PrisonerinDeepConfinement
	{"系囚的合啮拘笼", models.PrisonerinDeepConfinement, models.Head},
	{"系囚的铅石梏铐", models.PrisonerinDeepConfinement, models.Hands},
	{"系囚的幽闭缚束", models.PrisonerinDeepConfinement, models.Body},
	{"系囚的绝足锁桎", models.PrisonerinDeepConfinement, models.Feet},
	// PenaconyLandoftheDreams
	{"匹诺康尼的堂皇酒店", models.PenaconyLandoftheDreams, models.PlanarSphere},
	{"匹诺康尼的逐梦轨道", models.PenaconyLandoftheDreams, models.LinkRope},
	// FirmamentFronlineGlamoth
	{"格拉默的铁骑兵团", models.FirmamentFronlineGlamoth, models.PlanarSphere},
	{"格拉默的寂静坟碑", models.FirmamentFronlineGlamoth, models.LinkRope},
	// ZhongBiao
	{"钟表匠的极目透镜", models.ZhongBiao, models.Head},
	{"钟表匠的交运腕表", models.ZhongBiao, models.Hands},
	{"钟表匠的空幻礼服", models.ZhongBiao, models.Body},
	{"钟表匠的隐梦革履", models.ZhongBiao, models.Feet},
	// XianQu
	{"先驱的绝热围壳", models.XianQu, models.Head},
	{"先驱的虚极罗盘", models.XianQu, models.Hands},
	{"先驱的密合铅衣", models.XianQu, models.Body},
	{"先驱的泊星桩锚", models.XianQu, models.Feet},
	// ChuYun
	{"出云的祸津众神", models.ChuYun, models.PlanarSphere},
	{"出云的终始一刀", models.ChuYun, models.LinkRope},
	// WuZhu
	{"茨冈尼亚的母神卧榻", models.WuZhu, models.PlanarSphere},
	{"茨冈尼亚的轮回纽结", models.WuZhu, models.LinkRope},
	// ZhuLian
	{"铸炼宫的莲华灯芯", models.ZhuLian, models.PlanarSphere},
	{"铸炼宫的焰轮天绸", models.ZhuLian, models.LinkRope},
	// DuLan
	{"都蓝的穹窿金帐", models.DuLan, models.PlanarSphere},
	{"都蓝的器兽缰辔", models.DuLan, models.LinkRope},
	// TieQi
	{"铁骑的索敌战盔", models.TieQi, models.Head},
	{"铁骑的摧坚铁腕", models.TieQi, models.Hands},
	{"铁骑的银影装甲", models.TieQi, models.Body},
	{"铁骑的行空护胫", models.TieQi, models.Feet},
	// YongLie
	{"勇烈的玄枵面甲", models.YongLie, models.Head},
	{"勇烈的钩爪腕甲", models.YongLie, models.Hands},
	{"勇烈的飞翎瓷甲", models.YongLie, models.Body},
	{"勇烈的逐猎腿甲", models.YongLie, models.Feet},
}
