package helper

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bassbeaver/gioc"
	"github.com/spf13/viper"
)

const configServicesPrefix = "services"

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}

	return false
}

// GetStringPart returns part of source split by separator, empty string if there is no such part
func GetStringPart(source, separator string, part int) string {
	parts := strings.Split(source, separator)
	if part < 0 || part >= len(parts) {
		return ""
	}

	return parts[part]
}

// BuildConfigFromDir reads every supported config file of configPath directory (or of configPath file's directory)
// into one viper object. The first file is read, the following are merged over it.
func BuildConfigFromDir(configPath string) (*viper.Viper, error) {
	configObj := viper.New()

	var configDir string
	configPathStat, configPathStatError := os.Stat(configPath)
	if nil != configPathStatError {
		return nil, errors.New("failed to read configs: " + configPathStatError.Error())
	}
	if configPathStat.IsDir() {
		configDir = configPath
	} else {
		configDir = filepath.Dir(configPath)
	}

	firstConfigFile := true
	pathWalkError := filepath.Walk(
		configDir,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return errors.New("failed to read config file " + path + ", error: " + err.Error())
			}

			if info.IsDir() {
				return nil
			}

			configFilePath := filepath.Dir(path)
			configFileExt := filepath.Ext(info.Name())
			// if extension is not allowed - take next file
			if "" == configFileExt || !StringInSlice(configFileExt[1:], viper.SupportedExts) {
				return nil
			}

			configFileName := info.Name()[0 : len(info.Name())-len(configFileExt)]

			configObj.AddConfigPath(configFilePath)
			configObj.SetConfigName(configFileName)

			if firstConfigFile {
				if configError := configObj.ReadInConfig(); nil != configError {
					return configError
				}

				firstConfigFile = false
			} else {
				if configError := configObj.MergeInConfig(); nil != configError {
					return configError
				}
			}

			return nil
		},
	)
	if nil != pathWalkError {
		return nil, errors.New("failed to read configs: " + pathWalkError.Error())
	}

	return configObj, nil
}

// RegisterService registers factory of service configured under services.<alias>
func RegisterService(
	config *viper.Viper,
	container *gioc.Container,
	alias string,
	factoryMethod interface{},
	enableCaching bool,
) error {
	configServicePath := configServicesPrefix + "." + alias
	configServiceArgumentsPath := configServicesPrefix + "." + alias + ".arguments"
	if !config.IsSet(configServicePath) {
		return errors.New(alias + " service configuration not found")
	}

	var arguments []string
	if config.IsSet(configServiceArgumentsPath) {
		arguments = config.GetStringSlice(configServiceArgumentsPath)
	} else {
		arguments = make([]string, 0)
	}

	container.RegisterServiceFactoryByAlias(
		alias,
		gioc.Factory{
			Create:    factoryMethod,
			Arguments: arguments,
		},
		enableCaching,
	)

	return nil
}
