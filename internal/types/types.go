package types

// FogTypeId identifies the hardware platform of a fog node.
type FogTypeId int

const (
	FogTypeUnspecified FogTypeId = 0
	FogTypeX86         FogTypeId = 1
	FogTypeARM         FogTypeId = 2
)

func (t FogTypeId) IsValid() bool {
	return t >= FogTypeUnspecified && t <= FogTypeARM
}

// Provisionable reports whether a node may register itself as this type.
func (t FogTypeId) Provisionable() bool {
	return t == FogTypeX86 || t == FogTypeARM
}

// ChangeCategory names a change_trackings column. The agent polls for each
// category independently.
type ChangeCategory string

const (
	ChangeConfig          ChangeCategory = "config"
	ChangeContainerConfig ChangeCategory = "container_config"
	ChangeContainerList   ChangeCategory = "container_list"
	ChangeRouting         ChangeCategory = "routing"
	ChangeRegistries      ChangeCategory = "registries"
)

func (c ChangeCategory) IsValid() bool {
	switch c {
	case ChangeConfig, ChangeContainerConfig, ChangeContainerList, ChangeRouting, ChangeRegistries:
		return true
	}
	return false
}
