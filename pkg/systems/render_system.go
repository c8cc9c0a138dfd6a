package systems

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/roadrunner/pkg/components"
	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/decker502/roadrunner/pkg/types"
	"github.com/decker502/roadrunner/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// environmentBlend 环境预设渐变在背景上的混合比例
	environmentBlend = 0.35
	// environmentBands 天空渐变的水平条带数量
	environmentBands = 24
	// starFadeHeight 星点在该仰角（方向向量的 Y 分量）以下逐渐淡出
	starFadeHeight = 0.25
	// vehicleLineWidth 车辆线框宽度
	vehicleLineWidth = 1.5
	// groundLineWidth 地面网格线宽度
	groundLineWidth = 1
	// debugAxisLength 物理调试坐标轴长度
	debugAxisLength = 5
)

// RenderSystem 线框透视渲染器
//
// 职责：
//   - 背景色、环境渐变和星空
//   - 地面网格、车辆线框（透视投影 + 近裁剪面裁剪）
//   - 环境光 + 平行光着色，线性雾
//   - 投影到地面的简单阴影
//
// 渲染器只读取挂载的场景图，不拥有其中任何实体
type RenderSystem struct {
	entityManager *ecs.EntityManager

	// 星点方向缓存：实体ID → 单位方向
	stars map[ecs.EntityID][]starPoint
}

type starPoint struct {
	dir        mgl64.Vec3
	size       float32
	brightness float64
}

// lighting 一帧内汇总的光照参数
type lighting struct {
	ambient   float64
	intensity float64
	dir       mgl64.Vec3
	shadows   bool
	mapSize   int
	hasDir    bool
}

// NewRenderSystem 创建未挂载任何场景的渲染器
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{
		stars: make(map[ecs.EntityID][]starPoint),
	}
}

// Mount 挂载场景图
func (s *RenderSystem) Mount(em *ecs.EntityManager) {
	s.entityManager = em
	s.stars = make(map[ecs.EntityID][]starPoint)
	log.Printf("[RenderSystem] 场景已挂载: %d 个实体", em.Count())
}

// Unmount 卸载场景图，之后 Draw 不再绘制任何内容
func (s *RenderSystem) Unmount() {
	if s.entityManager != nil {
		log.Printf("[RenderSystem] 场景已卸载")
	}
	s.entityManager = nil
	s.stars = make(map[ecs.EntityID][]starPoint)
}

// Mounted 是否有挂载的场景
func (s *RenderSystem) Mounted() bool {
	return s.entityManager != nil
}

// Update 推进星空旋转
func (s *RenderSystem) Update(deltaTime float64) {
	if s.entityManager == nil {
		return
	}
	for _, id := range ecs.GetEntitiesWith1[*components.StarFieldComponent](s.entityManager) {
		sf, _ := ecs.GetComponent[*components.StarFieldComponent](s.entityManager, id)
		sf.Rotation = math.Mod(sf.Rotation+sf.Speed*0.01*deltaTime, 2*math.Pi)
	}
}

// Draw 绘制挂载的场景
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	if s.entityManager == nil {
		return
	}
	em := s.entityManager
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	s.drawBackground(screen, w, h)

	cams := ecs.GetEntitiesWith1[*components.CameraComponent](em)
	if len(cams) == 0 {
		return
	}
	cam, _ := ecs.GetComponent[*components.CameraComponent](em, cams[0])
	target := mgl64.Vec3{}
	if orbit, ok := ecs.GetComponent[*components.OrbitControlsComponent](em, cams[0]); ok {
		target = orbit.Target
	}
	vc := newViewCamera(cam, target, w, h)

	light := s.collectLighting()
	fog, hasFog := s.fog()

	s.drawStars(screen, vc)
	s.drawGround(screen, vc, light, fog, hasFog)
	s.drawShadows(screen, vc, light)
	s.drawMeshes(screen, vc, light, fog, hasFog)
	s.drawPhysicsDebug(screen, vc)
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image, w, h int) {
	em := s.entityManager
	bg := types.Color{A: 0xff}
	if ids := ecs.GetEntitiesWith1[*components.BackgroundComponent](em); len(ids) > 0 {
		c, _ := ecs.GetComponent[*components.BackgroundComponent](em, ids[0])
		bg = c.Color
	}
	screen.Fill(bg.RGBA())

	ids := ecs.GetEntitiesWith1[*components.EnvironmentComponent](em)
	if len(ids) == 0 {
		return
	}
	env, _ := ecs.GetComponent[*components.EnvironmentComponent](em, ids[0])
	bandHeight := float32(h) / environmentBands
	for i := 0; i < environmentBands; i++ {
		t := float64(i) / float64(environmentBands-1)
		sky := env.Zenith.Lerp(env.Horizon, t)
		c := bg.Lerp(sky, environmentBlend)
		vector.DrawFilledRect(screen, 0, float32(i)*bandHeight, float32(w), bandHeight+1, c.RGBA(), false)
	}
}

func (s *RenderSystem) collectLighting() lighting {
	em := s.entityManager
	l := lighting{}
	for _, id := range ecs.GetEntitiesWith1[*components.AmbientLightComponent](em) {
		a, _ := ecs.GetComponent[*components.AmbientLightComponent](em, id)
		l.ambient += a.Intensity
	}
	if ids := ecs.GetEntitiesWith1[*components.DirectionalLightComponent](em); len(ids) > 0 {
		d, _ := ecs.GetComponent[*components.DirectionalLightComponent](em, ids[0])
		l.hasDir = true
		l.intensity = d.Intensity
		l.dir = d.Direction()
		l.shadows = d.CastShadow
		l.mapSize = d.ShadowMapWidth
	}
	return l
}

func (s *RenderSystem) fog() (*components.FogComponent, bool) {
	ids := ecs.GetEntitiesWith1[*components.FogComponent](s.entityManager)
	if len(ids) == 0 {
		return nil, false
	}
	f, _ := ecs.GetComponent[*components.FogComponent](s.entityManager, ids[0])
	return f, true
}

// shade 按法线计算 Lambert 着色后的颜色
func shade(base types.Color, normal mgl64.Vec3, l lighting) types.Color {
	brightness := l.ambient
	if l.hasDir {
		brightness += l.intensity * math.Max(0, normal.Dot(l.dir.Mul(-1)))
	}
	return base.Scale(utils.Clamp(brightness, 0, 1.5))
}

// applyFog 按距离向雾色混合
func applyFog(c types.Color, dist float64, fog *components.FogComponent, hasFog bool) types.Color {
	if !hasFog || fog.Far <= fog.Near {
		return c
	}
	f := utils.Clamp01((dist - fog.Near) / (fog.Far - fog.Near))
	return c.Lerp(fog.Color, f)
}

func (s *RenderSystem) drawStars(screen *ebiten.Image, vc viewCamera) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith1[*components.StarFieldComponent](em) {
		sf, _ := ecs.GetComponent[*components.StarFieldComponent](em, id)
		points, ok := s.stars[id]
		if !ok {
			points = generateStars(sf)
			s.stars[id] = points
		}
		rot := mgl64.Rotate3DY(sf.Rotation)
		for _, p := range points {
			dir := rot.Mul3x1(p.dir)
			alpha := p.brightness
			if sf.Fade {
				alpha *= utils.Smoothstep(0, starFadeHeight, dir.Y())
			}
			if alpha <= 0.01 {
				continue
			}
			// 星空位于无穷远：以相机为中心放置
			x, y, ok := vc.Project(vc.position.Add(dir.Mul(sf.Radius)))
			if !ok {
				continue
			}
			c := color.RGBA{R: uint8(255 * alpha), G: uint8(255 * alpha), B: uint8(255 * alpha), A: uint8(255 * alpha)}
			vector.DrawFilledRect(screen, float32(x), float32(y), p.size, p.size, c, false)
		}
	}
}

// generateStars 按种子生成确定的星点分布
func generateStars(sf *components.StarFieldComponent) []starPoint {
	rng := rand.New(rand.NewSource(sf.Seed))
	points := make([]starPoint, 0, sf.Count)
	for i := 0; i < sf.Count; i++ {
		// 球面均匀分布
		z := rng.Float64()*2 - 1
		theta := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		dir := mgl64.Vec3{r * math.Cos(theta), z, r * math.Sin(theta)}

		// 球壳深度影响亮度：越远越暗
		depth := rng.Float64()
		shell := sf.Radius + depth*sf.Depth
		brightness := utils.Clamp01(sf.Radius / shell)
		size := float32(1 + rng.Float64()*sf.Factor*0.25)
		points = append(points, starPoint{dir: dir, size: size, brightness: brightness})
	}
	return points
}

func (s *RenderSystem) drawGround(screen *ebiten.Image, vc viewCamera, light lighting, fog *components.FogComponent, hasFog bool) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.GroundComponent, *components.TransformComponent](em) {
		g, _ := ecs.GetComponent[*components.GroundComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		m := tr.Matrix()
		normal := mgl64.TransformNormal(mgl64.Vec3{0, 0, 1}, m).Normalize()
		base := shade(g.Color, normal, light)

		for _, seg := range groundGrid(g) {
			a := mgl64.TransformCoordinate(seg.A, m)
			b := mgl64.TransformCoordinate(seg.B, m)
			s.strokeFogged(screen, vc, a, b, base, groundLineWidth, fog, hasFog)
		}
	}
}

// groundGrid 地面在本地 XY 平面内的网格线
func groundGrid(g *components.GroundComponent) [][2]mgl64.Vec3 {
	n := g.Grid
	if n < 1 {
		n = 1
	}
	hw, hd := g.Width/2, g.Depth/2
	lines := make([][2]mgl64.Vec3, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x := -hw + t*g.Width
		y := -hd + t*g.Depth
		lines = append(lines,
			[2]mgl64.Vec3{{x, -hd, 0}, {x, hd, 0}},
			[2]mgl64.Vec3{{-hw, y, 0}, {hw, y, 0}},
		)
	}
	return lines
}

// strokeFogged 按线段中点到相机的距离加雾后绘制
func (s *RenderSystem) strokeFogged(screen *ebiten.Image, vc viewCamera, a, b mgl64.Vec3, c types.Color, width float32, fog *components.FogComponent, hasFog bool) {
	x0, y0, x1, y1, ok := vc.ProjectSegment(a, b)
	if !ok {
		return
	}
	mid := a.Add(b).Mul(0.5)
	col := applyFog(c, vc.Distance(mid), fog, hasFog)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, col.RGBA(), true)
}

func (s *RenderSystem) drawShadows(screen *ebiten.Image, vc viewCamera, light lighting) {
	if !light.hasDir || !light.shadows {
		return
	}
	em := s.entityManager

	// 地面是唯一的阴影接收者
	receivers := ecs.GetEntitiesWith3[*components.GroundComponent, *components.ShadowComponent, *components.TransformComponent](em)
	if len(receivers) == 0 {
		return
	}
	recv, _ := ecs.GetComponent[*components.ShadowComponent](em, receivers[0])
	if !recv.ReceiveShadow {
		return
	}
	groundTr, _ := ecs.GetComponent[*components.TransformComponent](em, receivers[0])
	groundY := groundTr.Position.Y()

	width := float32(config.GetShadowLineWidth(light.mapSize))
	alpha := uint8(255 * utils.Clamp01(float64(recv.Alpha)))
	shadowColor := color.RGBA{A: alpha}

	for _, id := range ecs.GetEntitiesWith3[*components.MeshComponent, *components.ShadowComponent, *components.TransformComponent](em) {
		caster, _ := ecs.GetComponent[*components.ShadowComponent](em, id)
		if !caster.CastShadow {
			continue
		}
		mesh, _ := ecs.GetComponent[*components.MeshComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		for _, seg := range mesh.Root.WorldEdges(tr.Matrix()) {
			a, okA := projectOntoGround(seg.A, light.dir, groundY)
			b, okB := projectOntoGround(seg.B, light.dir, groundY)
			if !okA || !okB {
				continue
			}
			x0, y0, x1, y1, ok := vc.ProjectSegment(a, b)
			if !ok {
				continue
			}
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, shadowColor, true)
		}
	}
}

func (s *RenderSystem) drawMeshes(screen *ebiten.Image, vc viewCamera, light lighting, fog *components.FogComponent, hasFog bool) {
	em := s.entityManager
	up := mgl64.Vec3{0, 1, 0}
	for _, id := range ecs.GetEntitiesWith2[*components.MeshComponent, *components.TransformComponent](em) {
		mesh, _ := ecs.GetComponent[*components.MeshComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		for _, seg := range mesh.Root.WorldEdges(tr.Matrix()) {
			// 线框没有面法线，按线段方向与竖直方向合成一个近似法线
			normal := up
			if d := seg.B.Sub(seg.A); d.Len() > 0 {
				side := d.Normalize().Cross(up)
				if side.Len() > 0 {
					normal = up.Add(side.Normalize().Mul(0.5)).Normalize()
				}
			}
			c := shade(seg.Material.Color, normal, light)
			s.strokeFogged(screen, vc, seg.A, seg.B, c, vehicleLineWidth, fog, hasFog)
		}
	}
}

func (s *RenderSystem) drawPhysicsDebug(screen *ebiten.Image, vc viewCamera) {
	em := s.entityManager
	ids := ecs.GetEntitiesWith1[*components.PhysicsWorldComponent](em)
	if len(ids) == 0 {
		return
	}
	pw, _ := ecs.GetComponent[*components.PhysicsWorldComponent](em, ids[0])
	if !pw.Debug {
		return
	}
	axes := []struct {
		dir mgl64.Vec3
		c   color.RGBA
	}{
		{mgl64.Vec3{debugAxisLength, 0, 0}, color.RGBA{R: 0xff, A: 0xff}},
		{mgl64.Vec3{0, debugAxisLength, 0}, color.RGBA{G: 0xff, A: 0xff}},
		{mgl64.Vec3{0, 0, debugAxisLength}, color.RGBA{B: 0xff, A: 0xff}},
	}
	for _, axis := range axes {
		x0, y0, x1, y1, ok := vc.ProjectSegment(mgl64.Vec3{}, axis.dir)
		if ok {
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, axis.c, true)
		}
	}
}
