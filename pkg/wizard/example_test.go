package wizard_test

import (
	"fmt"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/ids"
	"github.com/matzehuels/plansmith/pkg/wizard"
)

func ExampleGenerate() {
	cfg := wizard.Config{
		ProjectType: plan.SingleRoom,
		RoomCount:   1,
		TotalSize:   30,
		Style:       "modern",
		Budget:      plan.Medium,
	}
	res, err := wizard.Generate(cfg, wizard.Deps{IDs: ids.NewSequential()})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p := res.Plan
	fmt.Println("id:", p.ID)
	fmt.Println("rooms:", len(p.Rooms), p.Rooms[0].Name)
	fmt.Println("walls:", len(p.Walls))
	fmt.Println("doors:", len(p.Doors))
	fmt.Println("windows:", len(p.Windows))
	fmt.Println("furniture:", len(p.Furniture))
	// Output:
	// id: plan_1
	// rooms: 1 Main Room
	// walls: 4
	// doors: 0
	// windows: 8
	// furniture: 5
}

func ExampleConfig_Validate() {
	cfg := wizard.DefaultConfig()
	cfg.RoomCount = 12
	fmt.Println(cfg.Validate())
	// Output:
	// CONFIG_OUT_OF_RANGE: room_count: 12 outside 1..10
}
