package history

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// NewSubnetResult builds a SubnetResult, encoding hosts as json
func NewSubnetResult(position int, subnet, state string, hosts []string, scanErr error) (*SubnetResult, error) {
	if hosts == nil {
		hosts = []string{}
	}

	encoded, err := json.Marshal(hosts)

	if err != nil {
		return nil, err
	}

	res := &SubnetResult{
		Position: position,
		Subnet:   subnet,
		State:    state,
		Found:    len(hosts),
		Hosts:    datatypes.JSON(encoded),
	}

	if scanErr != nil {
		res.Error = scanErr.Error()
	}

	return res, nil
}

// HostList decodes the hosts found in this subnet
func (r SubnetResult) HostList() ([]string, error) {
	hosts := []string{}

	if len(r.Hosts) == 0 {
		return hosts, nil
	}

	if err := json.Unmarshal(r.Hosts, &hosts); err != nil {
		return nil, err
	}

	return hosts, nil
}
