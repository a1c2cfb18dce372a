package collector

import (
	"context"
	"fmt"
	"os"
	"strings"

	"monitor-agent/models"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

const dockerSocket = "/var/run/docker.sock"

// DockerAvailable reports whether a local Docker daemon socket exists.
func DockerAvailable() bool {
	_, err := os.Stat(dockerSocket)
	return err == nil
}

// CollectContainers lists all containers, running and stopped.
func CollectContainers(ctx context.Context) ([]models.ContainerInfo, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("docker connect: %w", err)
	}
	defer cli.Close()

	list, err := cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("docker list: %w", err)
	}
	return containerInfos(list), nil
}

func containerInfos(list []container.Summary) []models.ContainerInfo {
	result := make([]models.ContainerInfo, 0, len(list))
	for _, c := range list {
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}
		id := c.ID
		if len(id) > 12 {
			id = id[:12]
		}
		result = append(result, models.ContainerInfo{
			ID:      id,
			Name:    name,
			Image:   c.Image,
			Status:  c.Status,
			State:   c.State,
			Created: c.Created,
		})
	}
	return result
}
