package scene

import "github.com/san-kum/orrery/internal/orrery"

// Node is a scene graph object. Position is the offset from the parent's
// origin, applied after the parent's rotation about Y.
type Node struct {
	Name      string
	Position  orrery.Vec3
	RotationY float64
	Radius    float64 // sphere radius, zero for pivots
	Color     orrery.Color
	Parent    *Node
	Children  []*Node
}

func NewNode(name string) *Node {
	return &Node{Name: name}
}

func NewSphere(name string, radius float64, color orrery.Color) *Node {
	return &Node{Name: name, Radius: radius, Color: color}
}

// Add reparents child under n.
func (n *Node) Add(child *Node) {
	if child.Parent != nil {
		child.Parent.remove(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) remove(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return
		}
	}
}

// WorldPosition composes every ancestor's rotation and offset.
func (n *Node) WorldPosition() orrery.Vec3 {
	var p orrery.Vec3
	for node := n; node != nil; node = node.Parent {
		p = node.Position.Add(p.RotateY(node.RotationY))
	}
	return p
}
