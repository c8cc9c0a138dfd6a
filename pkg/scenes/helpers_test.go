package scenes

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/roadrunner/pkg/embedded"
	"github.com/decker502/roadrunner/pkg/game"
	"github.com/decker502/roadrunner/pkg/utils"
)

const testResources = `version: "1.0"
base_path: assets
groups:
  vehicles:
    vehicles:
      - id: VEHICLE_A
        path: models/a.yaml
      - id: VEHICLE_BROKEN
        path: models/broken.yaml
`

const testVehicle = `id: %s
root:
  name: body
  mesh:
    kind: box
    size: [1, 1, 2]
`

// setupResources 用内存文件系统初始化资源管理器
func setupResources(t *testing.T) *game.ResourceManager {
	t.Helper()
	embedded.Init(fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(testResources)},
		"assets/models/a.yaml":         {Data: []byte(strings.Replace(testVehicle, "%s", "a", 1))},
		"assets/models/broken.yaml":    {Data: []byte("id: broken\n")},
	}, fstest.MapFS{})
	t.Cleanup(embedded.Reset)

	rm := game.NewResourceManager()
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig: %v", err)
	}
	return rm
}

// fakePointer 返回可由测试修改的指针状态
type fakePointer struct {
	state utils.PointerState
}

func (f *fakePointer) read() utils.PointerState { return f.state }

// clickAt 模拟一次在 (x, y) 处的点击释放
func (f *fakePointer) clickAt(x, y float64) {
	f.state = utils.PointerState{X: int(x), Y: int(y), JustReleased: true}
}

// recordingNavigator 记录导航请求
type recordingNavigator struct {
	views []game.ViewState
}

func (n *recordingNavigator) GoTo(view game.ViewState) {
	n.views = append(n.views, view)
}
